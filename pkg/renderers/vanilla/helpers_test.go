package vanilla_test

import (
	"io/fs"

	"github.com/goliatone/go-payforms/pkg/renderers/vanilla"
)

func fsReadFile(name string) ([]byte, error) {
	return fs.ReadFile(vanilla.AssetsFS(), name)
}
