package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "created", StateCreated.String())
	assert.Equal(t, "mounted", StateMounted.String())
	assert.Equal(t, "destroying", StateDestroying.String())
	assert.Equal(t, "destroyed", StateDestroyed.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestLifecycle_MountOnce(t *testing.T) {
	d := &fakeDelegate{immediate: true}
	w := NewCheckbox(d, nil, 3, false)
	assert.Equal(t, StateCreated, w.State())

	host, err := w.Mount()
	require.NoError(t, err)
	require.NotNil(t, host)
	assert.Equal(t, StateMounted, w.State())

	// A second mount fails and removes the freshly created element.
	_, err = w.Mount()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mount in state mounted")

	require.Len(t, d.created, 2)
	_, _, removed := d.created[1].snapshot()
	assert.True(t, removed)
}

func TestLifecycle_DeferredTeardown(t *testing.T) {
	d := &fakeDelegate{}
	w := NewCheckbox(d, nil, 3, false)
	_, err := w.Mount()
	require.NoError(t, err)

	w.Destroy()

	// Teardown waits for the surface's render pass to unwind.
	assert.Equal(t, StateDestroying, w.State())
	assert.Equal(t, 1, d.pending())
	_, _, removed := d.created[0].snapshot()
	assert.False(t, removed)

	d.flush()
	assert.Equal(t, StateDestroyed, w.State())
	_, _, removed = d.created[0].snapshot()
	assert.True(t, removed)
}

func TestLifecycle_DestroyIdempotent(t *testing.T) {
	d := &fakeDelegate{immediate: true}
	w := NewCheckbox(d, nil, 3, false)
	_, err := w.Mount()
	require.NoError(t, err)

	w.Destroy()
	assert.Equal(t, StateDestroyed, w.State())

	w.Destroy()
	assert.Equal(t, StateDestroyed, w.State())
}

func TestLifecycle_DestroyBeforeMount(t *testing.T) {
	w := NewCheckbox(&fakeDelegate{immediate: true}, nil, 3, false)
	w.Destroy()
	assert.Equal(t, StateDestroyed, w.State())

	_, err := w.Mount()
	assert.Error(t, err, "a destroyed widget never mounts")
}
