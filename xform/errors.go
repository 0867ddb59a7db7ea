package xform

import (
	"errors"
	"fmt"

	"github.com/adriansahlman/imgxform/imagebuf"
)

// Error kinds surfaced by the driver functions. Every driver
// also records its error on dst via Image.SetError, mirroring the original
// API's "errors surface through the destination's error channel" design;
// the plain error return is the idiomatic Go counterpart most call sites
// should actually check.
var (
	// ErrPreparationFailed reports that dst and src are incompatible: a
	// channel-count mismatch after clamping, or a deep source where the
	// driver doesn't support one. Images here are 2D only, so there is no
	// volumetric case to report.
	ErrPreparationFailed = errors.New("xform: destination and source are incompatible")

	// ErrUnknownFilter reports that a filter name didn't match any catalog
	// entry (case-sensitive linear scan).
	ErrUnknownFilter = errors.New("xform: unknown filter name")

	// ErrUninitializedDestination reports that dst was nil/unallocated and
	// no ROI was supplied to derive its size from.
	ErrUninitializedDestination = errors.New("xform: destination is uninitialized and no ROI was given")
)

// fail records err on dst (when dst is non-nil) and returns (false, err),
// the shape every in-place driver returns on a preparation failure.
func fail(dst *imagebuf.Image, op string, err error) (bool, error) {
	if dst != nil {
		dst.SetError(op + "(): " + err.Error())
	}
	return false, err
}

// joinUnknownFilter wraps a filter-catalog lookup failure as
// ErrUnknownFilter while preserving the underlying message.
func joinUnknownFilter(err error) error {
	return fmt.Errorf("%w: %v", ErrUnknownFilter, err)
}
