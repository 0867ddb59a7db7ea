package filter_test

import (
	"testing"

	"github.com/adriansahlman/imgxform/filter"
	"github.com/stretchr/testify/require"
)

func TestCreateUnknownNameErrors(t *testing.T) {
	_, err := filter.Create("not-a-filter", 0, 0)
	require.Error(t, err)
}

func TestCreateDefaultWidth(t *testing.T) {
	f, err := filter.Create("box", 0, 0)
	require.NoError(t, err)
	require.Greater(t, f.Width(), 0.0)
	require.Equal(t, f.Width(), f.Height())
}

func TestCreateExplicitWidthOverridesDefault(t *testing.T) {
	f, err := filter.Create("triangle", 8, 8)
	require.NoError(t, err)
	require.Equal(t, 8.0, f.Width())
	require.Equal(t, 8.0, f.Height())
}

func TestSeparableEvalMatchesProductOfAxes(t *testing.T) {
	f, err := filter.Create("mitchell", 0, 0)
	require.NoError(t, err)
	require.True(t, f.Separable)
	require.Equal(t, f.FX(0.3)*f.FY(-0.2), f.Eval(0.3, -0.2))
}

func TestDiskFilterIsNonSeparableAndRadiallySymmetric(t *testing.T) {
	f, err := filter.Create("disk", 0, 0)
	require.NoError(t, err)
	require.False(t, f.Separable)
	require.Equal(t, f.Eval(0.9, 0), f.Eval(0, 0.9))
	require.Equal(t, 0.0, f.Eval(10, 10))
	require.Equal(t, 1.0, f.Eval(0, 0))
}

func TestBoxFilterIsFlatWithinSupport(t *testing.T) {
	f, err := filter.Create("box", 0, 0)
	require.NoError(t, err)
	require.NotEqual(t, 0.0, f.FX(0))
	require.Equal(t, f.FX(0), f.FX(0.4))
}

func TestCreateStretchedWidensOnlyWhenNoExplicitWidth(t *testing.T) {
	wide, err := filter.CreateStretched("triangle", 0, 4, 4)
	require.NoError(t, err)
	base, err := filter.Create("triangle", 0, 0)
	require.NoError(t, err)
	require.Greater(t, wide.Width(), base.Width())

	exact, err := filter.CreateStretched("triangle", 2, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 2.0, exact.Width())
}

func TestDefaultResizeFilterNameByRatio(t *testing.T) {
	require.Equal(t, "lanczos3", filter.DefaultResizeFilterName(2, 2))
	require.Equal(t, "blackman-harris", filter.DefaultResizeFilterName(0.5, 1))
	require.Equal(t, "blackman-harris", filter.DefaultResizeFilterName(1, 0.5))
}

func TestTriangleFallbackWidth(t *testing.T) {
	f := filter.TriangleFallback(1, 1)
	require.Equal(t, 2.0, f.Width())
	// max(1,ratio) only widens the fallback for upsampling ratios; a
	// downsampling ratio below 1 still yields the unstretched width.
	f2 := filter.TriangleFallback(0.25, 0.25)
	require.Equal(t, 2.0, f2.Width())
	f3 := filter.TriangleFallback(4, 4)
	require.Equal(t, 8.0, f3.Width())
}

func TestRadiiGrowUnderDownsampling(t *testing.T) {
	f, err := filter.Create("lanczos3", 0, 0)
	require.NoError(t, err)
	ri, rj := filter.Radii(f, 1, 1)
	ri2, rj2 := filter.Radii(f, 0.25, 0.25)
	require.Greater(t, ri2, ri)
	require.Greater(t, rj2, rj)
}

func TestTapsIsTwiceRadiusPlusOne(t *testing.T) {
	require.Equal(t, 7, filter.Taps(3))
}

func TestColumnWeightsNormalizeToOne(t *testing.T) {
	f, err := filter.Create("triangle", 0, 0)
	require.NoError(t, err)
	out := make([]float64, filter.Taps(1))
	rawSum := filter.ColumnWeights(out, f.FX, 1, 1, 0.5)
	require.NotEqual(t, 0.0, rawSum)
	var sum float64
	for _, w := range out {
		sum += w
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestNamesListsEveryCatalogEntry(t *testing.T) {
	names := filter.Names()
	require.Contains(t, names, "box")
	require.Contains(t, names, "lanczos3")
	require.Contains(t, names, "disk")
	require.Contains(t, names, "blackman-harris")
}
