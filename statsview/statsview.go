package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/pong13h/logger"
)

const Address = "localhost:12613"
const url = "/debug/statsview"

// Launch a new goroutine running the statsview. The returned function stops
// the server
func Launch(output io.Writer) func() {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go func() {
		err := mgr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log(logger.Allow, "statsview", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)

	return mgr.Stop
}
