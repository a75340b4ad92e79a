//go:build !ebiten

package window

import (
	"context"

	"github.com/sheikhrachel/go-life/model"
)

// Run always reports that the ebiten build tag is missing
func Run(context.Context, *model.Engine, *model.Grid, Options) error {
	return ErrUnavailable
}
