// ABOUTME: Storage interfaces for persisting the output artifact
// ABOUTME: Implementations must replace the previous artifact atomically

package interfaces

import (
	"context"

	"goatland-feeds/core/domain"
)

// ArtifactSink persists the artifact produced by a pipeline run
type ArtifactSink interface {
	// Write replaces the stored artifact. On error the previous artifact must be left intact.
	Write(ctx context.Context, artifact *domain.Artifact) error

	// Target describes where the artifact is written, for logs and errors
	Target() string
}
