package limits

import (
	"errors"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{"CIF", 352, 288, false},
		{"zero is not a limit error", 0, 0, false},
		{"at limit", MaxDimension, MaxDimension, false},
		{"width over limit", MaxDimension + 1, 16, true},
		{"height over limit", 16, MaxDimension + 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if tt.wantErr {
				if !errors.Is(err, ErrDimensionTooLarge) {
					t.Errorf("ValidateDimensions(%d, %d) = %v, want ErrDimensionTooLarge", tt.width, tt.height, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateDimensions(%d, %d) unexpected error: %v", tt.width, tt.height, err)
			}
		})
	}
}

func TestValidateFrameBytes(t *testing.T) {
	if err := ValidateFrameBytes(1920 * 1080 * 3); err != nil {
		t.Errorf("1080p 4:4:4 frame rejected: %v", err)
	}
	if err := ValidateFrameBytes(MaxFrameBytes); err != nil {
		t.Errorf("frame at limit rejected: %v", err)
	}
	if err := ValidateFrameBytes(MaxFrameBytes + 1); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("ValidateFrameBytes(MaxFrameBytes+1) = %v, want ErrFrameTooLarge", err)
	}
	if err := ValidateFrameBytes(-1); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("ValidateFrameBytes(-1) = %v, want ErrFrameTooLarge", err)
	}
}

func TestIsMacroblockAligned(t *testing.T) {
	for _, n := range []int{0, 16, 176, 1920} {
		if !IsMacroblockAligned(n) {
			t.Errorf("IsMacroblockAligned(%d) = false", n)
		}
	}
	for _, n := range []int{1, 8, 1080, 1366} {
		if IsMacroblockAligned(n) {
			t.Errorf("IsMacroblockAligned(%d) = true", n)
		}
	}
}
