package passwallet

import "sync"

var (
	sharedOnce   sync.Once
	sharedClient *Client
	sharedErr    error
)

// Start returns the process-wide shared client, creating it on first
// use. The first call wins: subsequent calls return the original
// instance and ignore their app key and options, even when they
// differ. Use New for independent client instances.
func Start(appKey string, opts ...Option) (*Client, error) {
	sharedOnce.Do(func() {
		sharedClient, sharedErr = New(appKey, opts...)
	})
	return sharedClient, sharedErr
}
