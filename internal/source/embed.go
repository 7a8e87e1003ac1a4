package source

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var embedded embed.FS

// Embedded serves the data files compiled into the binary.
func Embedded() *FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return NewFS("embed", sub)
}
