package smile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisl/smile-go/pkg/smile"
	"github.com/sisl/smile-go/pkg/smile/memengine"
)

// countingNodeValue records how often the engine accessors are called.
type countingNodeValue struct {
	matrix      smile.Matrix
	size        int
	matrixCalls int
	sizeCalls   int
}

func (v *countingNodeValue) Matrix() smile.Matrix {
	v.matrixCalls++
	return v.matrix
}

func (v *countingNodeValue) Size() int {
	v.sizeCalls++
	return v.size
}

func TestNodeValueGetMatrixAliasesEngineMatrix(t *testing.T) {
	reg := newRegistry()
	v := newNodeValue(t, 2, 2)

	h, err := reg.RegisterNodeValue(v)
	require.NoError(t, err)

	mh, err := reg.NodeValueGetMatrix(h)
	require.NoError(t, err)
	assert.Equal(t, smile.KindMatrix, mh.Kind())

	m, err := reg.Matrix(mh)
	require.NoError(t, err)
	assert.Same(t, v.Table(), m)

	// writes through the engine are visible through the handle
	v.Table().Set(3, 0.75)
	got, err := reg.MatrixAt(mh, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got, 1e-12)
}

func TestNodeValueGetSize(t *testing.T) {
	reg := newRegistry()
	v := newNodeValue(t, 2, 3, 4)

	h, err := reg.RegisterNodeValue(v)
	require.NoError(t, err)

	n, err := reg.NodeValueGetSize(h)
	require.NoError(t, err)
	assert.Equal(t, 24, n)
	assert.Equal(t, v.Size(), n)
}

func TestAdaptersAreIdempotent(t *testing.T) {
	reg := newRegistry()
	m, err := memengine.NewMatrix(3)
	require.NoError(t, err)
	v := &countingNodeValue{matrix: m, size: 3}

	h, err := reg.RegisterNodeValue(v)
	require.NoError(t, err)

	mh1, err := reg.NodeValueGetMatrix(h)
	require.NoError(t, err)
	mh2, err := reg.NodeValueGetMatrix(h)
	require.NoError(t, err)
	assert.Equal(t, mh1, mh2)
	assert.Equal(t, 2, reg.Len())

	n1, err := reg.NodeValueGetSize(h)
	require.NoError(t, err)
	n2, err := reg.NodeValueGetSize(h)
	require.NoError(t, err)
	assert.Equal(t, n1, n2)

	// each call forwards once to the engine, nothing is cached
	assert.Equal(t, 2, v.matrixCalls)
	assert.Equal(t, 2, v.sizeCalls)
	assert.Equal(t, []float64{0, 0, 0}, m.Values())
}

func TestNodeValueGetMatrixWithoutMatrix(t *testing.T) {
	reg := newRegistry()

	h, err := reg.RegisterNodeValue(memengine.NewNodeValue(nil))
	require.NoError(t, err)

	_, err = reg.NodeValueGetMatrix(h)
	require.ErrorIs(t, err, smile.ErrNilMatrix)

	n, err := reg.NodeValueGetSize(h)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAdaptersRejectInvalidHandles(t *testing.T) {
	reg := newRegistry()
	v := newNodeValue(t, 2)
	h, err := reg.RegisterNodeValue(v)
	require.NoError(t, err)
	mh, err := reg.NodeValueGetMatrix(h)
	require.NoError(t, err)

	_, err = reg.NodeValueGetMatrix(0)
	require.ErrorIs(t, err, smile.ErrInvalidHandle)
	_, err = reg.NodeValueGetSize(0)
	require.ErrorIs(t, err, smile.ErrInvalidHandle)

	_, err = reg.NodeValueGetMatrix(mh)
	require.ErrorIs(t, err, smile.ErrWrongKind)
	_, err = reg.NodeValueGetSize(mh)
	require.ErrorIs(t, err, smile.ErrWrongKind)

	require.NoError(t, reg.Release(h))
	_, err = reg.NodeValueGetMatrix(h)
	require.ErrorIs(t, err, smile.ErrStaleHandle)
	_, err = reg.NodeValueGetSize(h)
	require.ErrorIs(t, err, smile.ErrStaleHandle)
}

func TestReleasingNodeValueReleasesItsMatrix(t *testing.T) {
	reg := newRegistry()
	v := newNodeValue(t, 2)
	h, err := reg.RegisterNodeValue(v)
	require.NoError(t, err)
	mh, err := reg.NodeValueGetMatrix(h)
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	require.NoError(t, reg.Release(h))
	assert.Zero(t, reg.Len())

	_, err = reg.Matrix(mh)
	require.ErrorIs(t, err, smile.ErrStaleHandle)

	// the engine objects are untouched
	assert.Equal(t, 2, v.Size())
	assert.NotNil(t, v.Table())
}

func TestReleasingMatrixKeepsNodeValue(t *testing.T) {
	reg := newRegistry()
	h, err := reg.RegisterNodeValue(newNodeValue(t, 2))
	require.NoError(t, err)
	mh, err := reg.NodeValueGetMatrix(h)
	require.NoError(t, err)

	require.NoError(t, reg.Release(mh))
	_, err = reg.NodeValue(h)
	require.NoError(t, err)

	again, err := reg.NodeValueGetMatrix(h)
	require.NoError(t, err)
	assert.NotEqual(t, mh, again)

	require.NoError(t, reg.Release(h))
	_, err = reg.Matrix(again)
	require.ErrorIs(t, err, smile.ErrStaleHandle)
}

func TestSharedMatrixGetsOneHandlePerNodeValue(t *testing.T) {
	reg := newRegistry()
	m, err := memengine.NewMatrix(2)
	require.NoError(t, err)

	a, err := reg.RegisterNodeValue(memengine.NewNodeValue(m))
	require.NoError(t, err)
	b, err := reg.RegisterNodeValue(memengine.NewNodeValue(m))
	require.NoError(t, err)

	ma, err := reg.NodeValueGetMatrix(a)
	require.NoError(t, err)
	mb, err := reg.NodeValueGetMatrix(b)
	require.NoError(t, err)
	assert.NotEqual(t, ma, mb)

	require.NoError(t, reg.Release(a))
	got, err := reg.Matrix(mb)
	require.NoError(t, err)
	assert.Same(t, m, got)
}

func TestMatrixAccessors(t *testing.T) {
	reg := newRegistry()
	h, err := reg.RegisterNodeValue(newNodeValue(t, 2, 2))
	require.NoError(t, err)
	mh, err := reg.NodeValueGetMatrix(h)
	require.NoError(t, err)

	n, err := reg.MatrixSize(mh)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	v, err := reg.MatrixAt(mh, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-12)

	_, err = reg.MatrixAt(mh, 4)
	require.ErrorIs(t, err, smile.ErrIndexOutOfRange)
	_, err = reg.MatrixAt(mh, -1)
	require.ErrorIs(t, err, smile.ErrIndexOutOfRange)

	_, err = reg.MatrixSize(h)
	require.ErrorIs(t, err, smile.ErrWrongKind)
}

func TestPackageLevelAdaptersUseDefaultRegistry(t *testing.T) {
	v := newNodeValue(t, 5)
	h, err := smile.Default().RegisterNodeValue(v)
	require.NoError(t, err)
	t.Cleanup(func() { _ = smile.Default().Release(h) })

	n, err := smile.NodeValueGetSize(h)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	mh, err := smile.NodeValueGetMatrix(h)
	require.NoError(t, err)
	m, err := smile.Default().Matrix(mh)
	require.NoError(t, err)
	assert.Same(t, v.Table(), m)
}
