package systems

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroDimension is returned when an element with zero width or height is
// passed to a scaling function
var ErrZeroDimension = errors.New("width/height == 0")

// Positionable is anything with a mutable position
type Positionable interface {
	X() float64
	SetX(x float64)
	Y() float64
	SetY(y float64)
}

// Alignable is a center-anchored element the align system can move and scale.
// Width and Height are the unscaled size.
type Alignable interface {
	Positionable
	Width() float64
	Height() float64
	SetScale(factor float64)
}

// DisplaySizer is implemented by elements that know their rendered size
// after scaling. Edge alignment prefers it over Width/Height.
type DisplaySizer interface {
	DisplayWidth() float64
	DisplayHeight() float64
}

// IntrinsicSizer is implemented by elements whose Width/Height already
// include a previous scale. ScaleToFillScreen divides by the intrinsic size.
type IntrinsicSizer interface {
	IntrinsicWidth() float64
	IntrinsicHeight() float64
}

// Axis selects which absolute coordinate of a Placement applies
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Placement is a fraction of a size, or an absolute coordinate that skips
// the fractional math. A Placement with X set is absolute on the x axis
// only; on the y axis its Fraction is used.
type Placement struct {
	Fraction float64
	X        *float64
	Y        *float64
}

// Frac returns a fractional placement
func Frac(f float64) Placement {
	return Placement{Fraction: f}
}

// AbsX returns a placement pinned to the literal x coordinate
func AbsX(x float64) Placement {
	return Placement{X: &x}
}

// AbsY returns a placement pinned to the literal y coordinate
func AbsY(y float64) Placement {
	return Placement{Y: &y}
}

// Center is the default edge placement: the element's midpoint on the edge
var Center = Frac(0.5)

func (p Placement) absolute(axis Axis) (float64, bool) {
	switch {
	case axis == AxisX && p.X != nil:
		return *p.X, true
	case axis == AxisY && p.Y != nil:
		return *p.Y, true
	}
	return 0, false
}

// AlignSystem positions and scales elements against the screen metrics.
// It keeps no state of its own; calling any method twice with unchanged
// metrics gives the same result.
type AlignSystem struct {
	metrics *ScreenMetrics
	logger  *Logger
}

// NewAlignSystem creates an align system reading from metrics
func NewAlignSystem(metrics *ScreenMetrics, logger *Logger) *AlignSystem {
	if logger == nil {
		logger = NewLogger(nil, nil)
	}
	return &AlignSystem{
		metrics: metrics,
		logger:  logger,
	}
}

// Metrics returns the screen metrics the system reads from
func (a *AlignSystem) Metrics() *ScreenMetrics {
	return a.metrics
}

// Resolve picks the landscape or portrait placement for the current
// orientation. Without a portrait value the landscape one is used for both.
// absolute is true when the chosen placement carries a literal coordinate
// for axis.
func (a *AlignSystem) Resolve(axis Axis, landscape Placement, portrait ...Placement) (value float64, absolute bool) {
	effective := landscape
	if len(portrait) > 0 && a.metrics.IsPortrait() {
		effective = portrait[0]
	}

	if v, ok := effective.absolute(axis); ok {
		return v, true
	}
	return effective.Fraction, false
}

// AlignToBottomEdge places a center-anchored element against the bottom
// edge. Fraction 0.5 puts the element's midpoint on the edge, 1.0 puts its
// top edge there.
func (a *AlignSystem) AlignToBottomEdge(img Alignable, landscape Placement, portrait ...Placement) float64 {
	v, abs := a.Resolve(AxisY, landscape, portrait...)
	if abs {
		img.SetY(v)
	} else {
		img.SetY(a.metrics.Bottom() - displayHeight(img)*v)
	}
	return img.Y()
}

// AlignToTopEdge places a center-anchored element against the top edge
func (a *AlignSystem) AlignToTopEdge(img Alignable, landscape Placement, portrait ...Placement) float64 {
	v, abs := a.Resolve(AxisY, landscape, portrait...)
	if abs {
		img.SetY(v)
	} else {
		img.SetY(a.metrics.Top() + displayHeight(img)*v)
	}
	return img.Y()
}

// AlignToLeftEdge places a center-anchored element against the left edge
func (a *AlignSystem) AlignToLeftEdge(img Alignable, landscape Placement, portrait ...Placement) float64 {
	v, abs := a.Resolve(AxisX, landscape, portrait...)
	if abs {
		img.SetX(v)
	} else {
		img.SetX(a.metrics.Left() + displayWidth(img)*v)
	}
	return img.X()
}

// AlignToRightEdge places a center-anchored element against the right edge
func (a *AlignSystem) AlignToRightEdge(img Alignable, landscape Placement, portrait ...Placement) float64 {
	v, abs := a.Resolve(AxisX, landscape, portrait...)
	if abs {
		img.SetX(v)
	} else {
		img.SetX(a.metrics.Right() - displayWidth(img)*v)
	}
	return img.X()
}

// PositionHorizontalFraction moves a point to a fraction of the screen
// width: 0 is the left edge, 0.5 the center, 1 the right edge.
func (a *AlignSystem) PositionHorizontalFraction(point Positionable, landscape Placement, portrait ...Placement) float64 {
	v, abs := a.Resolve(AxisX, landscape, portrait...)
	if abs {
		point.SetX(v)
	} else {
		point.SetX(a.metrics.Left() + a.metrics.Width()*v)
	}
	return point.X()
}

// PositionVerticalFraction moves a point to a fraction of the screen height
func (a *AlignSystem) PositionVerticalFraction(point Positionable, landscape Placement, portrait ...Placement) float64 {
	v, abs := a.Resolve(AxisY, landscape, portrait...)
	if abs {
		point.SetY(v)
	} else {
		point.SetY(a.metrics.Top() + a.metrics.Height()*v)
	}
	return point.Y()
}

// CenterOnScreen moves a center-anchored element to the screen center
func (a *AlignSystem) CenterOnScreen(img Positionable) {
	img.SetX(a.metrics.CenterX())
	img.SetY(a.metrics.Top() + a.metrics.Height()/2)
}

// ScaleToFillScreen scales img so it covers the whole screen, plus the
// given offsets, and centers it. The element may bleed past the edges.
func (a *AlignSystem) ScaleToFillScreen(img Alignable, offsetX, offsetY float64) (float64, error) {
	rawWidth, rawHeight := img.Width(), img.Height()
	if intrinsic, ok := img.(IntrinsicSizer); ok {
		// both axes or neither, never a mix of scaled and unscaled sizes
		if w, h := intrinsic.IntrinsicWidth(), intrinsic.IntrinsicHeight(); w != 0 && h != 0 {
			rawWidth, rawHeight = w, h
		}
	}
	if err := a.checkSize("ScaleToFillScreen", rawWidth, rawHeight); err != nil {
		return 0, err
	}

	scale := math.Max(
		(a.metrics.Width()+offsetX)/rawWidth,
		(a.metrics.Height()+offsetY)/rawHeight,
	)
	img.SetScale(scale)

	img.SetX(a.metrics.CenterX())
	img.SetY(a.metrics.CenterY())
	return scale, nil
}

// ScaleToFillRect scales img so it covers a width x height rectangle.
// The position is left alone.
func (a *AlignSystem) ScaleToFillRect(img Alignable, width, height float64) (float64, error) {
	if err := a.checkSize("ScaleToFillRect", img.Width(), img.Height()); err != nil {
		return 0, err
	}

	scale := math.Max(width/img.Width(), height/img.Height())
	img.SetScale(scale)
	return scale, nil
}

type fitBounds struct {
	min, max float64
}

// FitOption limits the scale chosen by ScaleToFitWithinSize
type FitOption func(*fitBounds)

// WithMaxScale caps the fitted scale
func WithMaxScale(scale float64) FitOption {
	return func(b *fitBounds) {
		b.max = scale
	}
}

// WithMinScale sets a floor for the fitted scale
func WithMinScale(scale float64) FitOption {
	return func(b *fitBounds) {
		b.min = scale
	}
}

// ScaleToFitWithinSize scales img so it fits entirely inside a
// width x height box without cropping, clamped by the options.
func (a *AlignSystem) ScaleToFitWithinSize(img Alignable, width, height float64, opts ...FitOption) (float64, error) {
	if err := a.checkSize("ScaleToFitWithinSize", img.Width(), img.Height()); err != nil {
		return 0, err
	}

	bounds := fitBounds{min: 0, max: math.Inf(1)}
	for _, opt := range opts {
		opt(&bounds)
	}

	calcScale := math.Min(width/math.Abs(img.Width()), height/math.Abs(img.Height()))
	scale := math.Min(bounds.max, math.Max(bounds.min, calcScale))
	img.SetScale(scale)
	return scale, nil
}

// ScaleToFitScreenAndCenter fits img into the given share of the screen and
// centers it. With a zero fraction the fit is skipped but img is still
// centered.
func (a *AlignSystem) ScaleToFitScreenAndCenter(img Alignable, widthFraction, heightFraction float64) error {
	var err error
	if isSet(widthFraction) && isSet(heightFraction) {
		_, err = a.FitScreen(img, widthFraction, heightFraction)
	}

	a.CenterOnScreen(img)
	return err
}

// FitScreen scales img to fit into a share of the screen: 1.0 is the whole
// width or height, 0.5 half of it. A zero fraction makes it a no-op that
// returns a zero scale.
func (a *AlignSystem) FitScreen(img Alignable, widthFraction, heightFraction float64) (float64, error) {
	if !isSet(widthFraction) || !isSet(heightFraction) {
		return 0, nil
	}
	if err := a.checkSize("FitScreen", img.Width(), img.Height()); err != nil {
		return 0, err
	}

	fitWidth := (a.metrics.Width() / img.Width()) * widthFraction
	fitHeight := (a.metrics.Height() / img.Height()) * heightFraction
	scale := math.Min(fitWidth, fitHeight)
	img.SetScale(scale)
	return scale, nil
}

// checkSize logs and returns ErrZeroDimension for empty elements so one
// broken asset does not stop the rest of a resize pass
func (a *AlignSystem) checkSize(op string, width, height float64) error {
	if width != 0 && height != 0 {
		return nil
	}
	a.logger.Error(ErrZeroDimension.Error(), "op", op, "width", width, "height", height)
	return fmt.Errorf("%s: %w", op, ErrZeroDimension)
}

func isSet(fraction float64) bool {
	return fraction != 0 && !math.IsNaN(fraction)
}

func displayWidth(img Alignable) float64 {
	if ds, ok := img.(DisplaySizer); ok {
		return math.Abs(ds.DisplayWidth())
	}
	return math.Abs(img.Width())
}

func displayHeight(img Alignable) float64 {
	if ds, ok := img.(DisplaySizer); ok {
		return math.Abs(ds.DisplayHeight())
	}
	return math.Abs(img.Height())
}
