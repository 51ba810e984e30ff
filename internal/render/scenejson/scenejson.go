// Package scenejson encodes gauge scenes as JSON for rendering backends outside this process.
package scenejson

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/garrettladley/gaugeview/internal/gauge"
)

func Marshal(scene gauge.Scene) ([]byte, error) {
	return json.Marshal(scene)
}

func Encode(w io.Writer, scene gauge.Scene, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(scene)
}

func Decode(r io.Reader) (gauge.Scene, error) {
	var scene gauge.Scene
	if err := json.NewDecoder(r).Decode(&scene); err != nil {
		return gauge.Scene{}, err
	}
	return scene, nil
}
