//go:build !release

package resources

const resourceDir = ".pong13h"

func resourcePath() (string, error) {
	return resourceDir, nil
}
