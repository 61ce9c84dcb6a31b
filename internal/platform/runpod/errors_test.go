package runpod

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClassifyCreateError_NoCapacity(t *testing.T) {
	t.Parallel()
	opts := CreatePodOpts{GPUTypeID: "NVIDIA A100 80GB PCIe", GPUCount: 2, DataCenterID: "EU-RO-1"}

	err := classifyCreateError([]string{"There are no longer any instances available with the requested specifications."}, opts)
	if !IsNoCapacity(err) {
		t.Fatalf("expected NoCapacityError, got %T: %v", err, err)
	}

	var nc *NoCapacityError
	if !errors.As(err, &nc) {
		t.Fatal("errors.As failed")
	}
	if nc.GPUType != opts.GPUTypeID {
		t.Errorf("capacity error must carry the exact gpu type string, got %q", nc.GPUType)
	}
	if !strings.Contains(err.Error(), opts.GPUTypeID) {
		t.Errorf("error message must name the gpu type: %v", err)
	}
}

func TestClassifyCreateError_InvalidTemplate(t *testing.T) {
	t.Parallel()
	opts := CreatePodOpts{TemplateID: "tmpl-x", NetworkVolumeID: "vol-y"}

	err := classifyCreateError([]string{"The template provided is invalid"}, opts)
	if !IsInvalidSpec(err) {
		t.Fatalf("expected InvalidSpecError, got %T: %v", err, err)
	}
	var is *InvalidSpecError
	_ = errors.As(err, &is)
	if is.Field != "template_id" || is.Value != "tmpl-x" {
		t.Errorf("expected template field/value, got %q=%q", is.Field, is.Value)
	}
}

func TestClassifyCreateError_InvalidVolume(t *testing.T) {
	t.Parallel()
	opts := CreatePodOpts{TemplateID: "tmpl-x", NetworkVolumeID: "vol-y"}

	err := classifyCreateError([]string{"network volume not found"}, opts)
	var is *InvalidSpecError
	if !errors.As(err, &is) {
		t.Fatalf("expected InvalidSpecError, got %T", err)
	}
	if is.Field != "network_volume_id" || is.Value != "vol-y" {
		t.Errorf("expected volume field/value, got %q=%q", is.Field, is.Value)
	}
}

func TestClassifyCreateError_UnknownIsTransient(t *testing.T) {
	t.Parallel()
	err := classifyCreateError([]string{"internal server error"}, CreatePodOpts{})
	if !IsTransient(err) {
		t.Fatalf("expected APIError for unrecognized message, got %T: %v", err, err)
	}
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	t.Parallel()
	base := &NoCapacityError{GPUType: "X", Count: 1}
	wrapped := fmt.Errorf("create phase failed: %w", base)
	if !IsNoCapacity(wrapped) {
		t.Error("IsNoCapacity must see through wrapping")
	}
	if IsNoCapacity(errors.New("other")) {
		t.Error("IsNoCapacity false positive")
	}
}
