package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileImagesKeptThenUploaded(t *testing.T) {
	original := []string{"a", "b", "c"}
	kept := []string{"c", "a"}
	uploaded := []string{"d"}

	final, orphaned := ReconcileImages(original, kept, uploaded)

	assert.Equal(t, []string{"c", "a", "d"}, final, "kept order first, uploads appended")
	assert.Equal(t, []string{"b"}, orphaned)
}

func TestReconcileImagesNoOpWhenEverythingKept(t *testing.T) {
	original := []string{"a", "b"}

	final, orphaned := ReconcileImages(original, original, nil)

	assert.Equal(t, []string{"a", "b"}, final)
	assert.Empty(t, orphaned, "URLs still referenced must never be orphaned")
}

func TestReconcileImagesAllRemoved(t *testing.T) {
	final, orphaned := ReconcileImages([]string{"a", "b"}, nil, nil)

	assert.Empty(t, final, "a record may end up with zero images")
	assert.Equal(t, []string{"a", "b"}, orphaned)
}

func TestReconcileImagesFreshRecord(t *testing.T) {
	final, orphaned := ReconcileImages(nil, nil, []string{"x", "y"})

	assert.Equal(t, []string{"x", "y"}, final)
	assert.Empty(t, orphaned)
}

func TestReconcileImagesDuplicateInKeptAndOriginal(t *testing.T) {
	// a URL present in final must survive even though it was original
	final, orphaned := ReconcileImages([]string{"a"}, []string{"a"}, []string{"b"})

	assert.Equal(t, []string{"a", "b"}, final)
	assert.Empty(t, orphaned)
}

func TestSplitImageList(t *testing.T) {
	assert.Nil(t, SplitImageList(""))
	assert.Nil(t, SplitImageList("  "))
	assert.Equal(t, []string{"a", "b"}, SplitImageList("a,b"))
	assert.Equal(t, []string{"a", "b"}, SplitImageList(" a , ,b, "))
}
