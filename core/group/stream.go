// core/group/stream.go
package group

import "context"

// Stream opens path and emits its groups on the returned channel. The error
// channel receives exactly one value (nil on success) after the group
// channel is closed. Open errors for non-stdin paths are reported up front.
func Stream(ctx context.Context, path string) (<-chan Group, <-chan error, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan Group, 64)
	done := make(chan error, 1)
	go func() {
		defer func() { _ = rc.Close() }()
		err := ScanCtx(ctx, rc, path, func(g Group) error {
			select {
			case out <- g:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		close(out)
		done <- err
	}()
	return out, done, nil
}
