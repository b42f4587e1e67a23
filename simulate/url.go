package simulate

import (
	"fmt"
	"time"

	"github.com/moyoez/uploadkit-go/tool"
	"github.com/moyoez/uploadkit-go/types"
)

// mockURLBase is where successful simulated uploads pretend to live.
const mockURLBase = "https://mock-upload-server.example.com/files"

// buildMockURL synthesizes the URL reported for a successful upload from the
// resolution time and the whitespace-sanitized file name.
func buildMockURL(now time.Time, fileName string) string {
	return fmt.Sprintf("%s/%d-%s", mockURLBase, now.UnixMilli(), tool.SanitizeFileName(fileName))
}

// DefaultUploadOptions returns options populated with the stock delay and
// failure chance. Hand-built UploadOptions with a zero FailureChance mean
// "never fail"; start from this constructor to keep the stock 10% chance.
func DefaultUploadOptions() *types.UploadOptions {
	return &types.UploadOptions{
		Delay:         DefaultDelay,
		FailureChance: DefaultFailureChance,
	}
}
