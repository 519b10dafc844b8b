package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckbox_MountStates(t *testing.T) {
	tests := []struct {
		name      string
		checked   bool
		wantText  string
		wantClass string
	}{
		{"unchecked", false, "☐", "cm-task-unchecked"},
		{"checked", true, "☑", "cm-task-checked"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDelegate{immediate: true}
			w := NewCheckbox(d, nil, 3, tt.checked)

			_, err := w.Mount()
			require.NoError(t, err)

			text, class, _ := d.created[0].snapshot()
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantClass, class)
		})
	}
}

func TestCheckbox_Toggle(t *testing.T) {
	ed := &fakeEditor{}
	w := NewCheckbox(&fakeDelegate{immediate: true}, ed, 3, false)

	require.NoError(t, w.Toggle())
	assert.Equal(t, 3, ed.from)
	assert.Equal(t, 4, ed.to)
	assert.Equal(t, "x", ed.text, "toggling unchecked writes x")
	assert.Equal(t, 1, ed.calls, "exactly the bracketed character is rewritten")
}

func TestCheckbox_ToggleChecked(t *testing.T) {
	ed := &fakeEditor{}
	w := NewCheckbox(&fakeDelegate{immediate: true}, ed, 7, true)

	require.NoError(t, w.Toggle())
	assert.Equal(t, 7, ed.from)
	assert.Equal(t, " ", ed.text)
}

func TestCheckbox_ToggleWithoutEditor(t *testing.T) {
	w := NewCheckbox(&fakeDelegate{immediate: true}, nil, 3, false)
	assert.Error(t, w.Toggle())
}

func TestCheckbox_MountWithoutDelegate(t *testing.T) {
	w := NewCheckbox(nil, nil, 3, false)
	_, err := w.Mount()
	assert.Error(t, err)
}

func TestCheckbox_Eq(t *testing.T) {
	a := NewCheckbox(nil, nil, 3, false)

	assert.True(t, a.Eq(NewCheckbox(nil, nil, 3, false)))
	assert.False(t, a.Eq(NewCheckbox(nil, nil, 3, true)), "state change remounts")
	assert.False(t, a.Eq(NewCheckbox(nil, nil, 9, false)), "position change remounts")
	assert.False(t, a.Eq(NewCodeCard(nil, "x", "go")))
}
