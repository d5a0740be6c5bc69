package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/pong13h/resources"
)

const geometryResource = "window"

func parseGeometry(s string) (windowGeometry, error) {
	var geom windowGeometry
	if s == "" {
		return geom, nil
	}
	_, err := fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return windowGeometry{}, fmt.Errorf("ebiten: window geometry: %w", err)
	}
	return geom, nil
}

func onWindowOpen() (windowGeometry, error) {
	s, err := resources.Read(geometryResource)
	if err != nil {
		return windowGeometry{}, err
	}

	geom, err := parseGeometry(s)
	if err != nil {
		return windowGeometry{}, err
	}

	if geom.valid() {
		ebiten.SetWindowPosition(geom.x, geom.y)
		ebiten.SetWindowSize(geom.w, geom.h)
	}

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !geom.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write(geometryResource, s)
}
