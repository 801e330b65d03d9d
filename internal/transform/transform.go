package transform

import (
	"fmt"

	"github.com/reisim/property-calculator/internal/domain"
)

// ConfigTransform is a composable operation deriving a new configuration
// from a base one. Transforms never mutate their input; the stressed
// pipeline re-runs on the derived copy with fully independent state.
type ConfigTransform interface {
	// Apply returns a new configuration with the transform applied.
	Apply(base *domain.Configuration) (*domain.Configuration, error)

	// Name returns a short identifier for this transform.
	Name() string

	// Description returns a human-readable summary of the change.
	Description() string

	// Validate checks the transform parameters without applying them.
	Validate(base *domain.Configuration) error
}

// ApplyTransforms applies a sequence of transforms in order, each receiving
// the output of the previous one.
func ApplyTransforms(base *domain.Configuration, transforms []ConfigTransform) (*domain.Configuration, error) {
	if base == nil {
		return nil, fmt.Errorf("base configuration cannot be nil")
	}
	if len(transforms) == 0 {
		return base.DeepCopy(), nil
	}

	current := base
	for i, tr := range transforms {
		if tr == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := tr.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", tr.Name(), err)
		}
		next, err := tr.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", tr.Name(), err)
		}
		current = next
	}
	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s: %s: %v", e.TransformName, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s: %s", e.TransformName, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
