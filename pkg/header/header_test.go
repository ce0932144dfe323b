package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKind_IsValid(t *testing.T) {
	k := KindStatus
	assert.True(t, k.IsValid())

	unknown := Kind("Recipe")
	assert.False(t, unknown.IsValid())
	assert.Equal(t, "GPUStatus", KindStatus.String())
}

func TestNew_Options(t *testing.T) {
	h := New(
		WithKind(KindStatus),
		WithAPIVersion("gpustat.nvidia.com/v1alpha1"),
		WithMetadata(MetadataHostname, "gpu-node-1"),
	)

	assert.Equal(t, KindStatus, h.Kind)
	assert.Equal(t, "gpustat.nvidia.com/v1alpha1", h.APIVersion)
	assert.Equal(t, "gpu-node-1", h.Metadata[MetadataHostname])
}

func TestHeader_Init(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	at := time.Date(2025, 12, 30, 18, 30, 0, 0, loc)

	var h Header
	h.Init(KindStatus, "v1", "v0.2.0", at)

	assert.Equal(t, KindStatus, h.Kind)
	assert.Equal(t, "v1", h.APIVersion)
	assert.Equal(t, "2025-12-30T10:30:00Z", h.Metadata[MetadataTimestamp])
	assert.Equal(t, "v0.2.0", h.Metadata[MetadataVersion])
}

func TestHeader_InitWithoutVersion(t *testing.T) {
	var h Header
	h.Init(KindStatus, "v1", "", time.Now())

	_, ok := h.Metadata[MetadataVersion]
	assert.False(t, ok)
}

func TestHeader_SetMetadataOnZeroValue(t *testing.T) {
	var h Header
	h.SetMetadata(MetadataDriver, "570.158.01")
	assert.Equal(t, "570.158.01", h.Metadata[MetadataDriver])
}
