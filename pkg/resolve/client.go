// Package resolve is a thin façade over the DaVinci Resolve scripting API.
// Methods forward their arguments to the named vendor operation and return
// whatever comes back, normalizing bare nulls to explicit absent values. The
// vendor API's semantics are its own; nothing here interprets them.
package resolve

import (
	"context"

	"github.com/Norgate-AV/dvrc/internal/interfaces"
	"github.com/Norgate-AV/dvrc/internal/logger"
	"github.com/Norgate-AV/dvrc/internal/scripting"
)

// Client holds the connection to the Resolve scripting entry point and hands
// out accessor objects for the vendor subsystems.
type Client struct {
	bridge interfaces.Bridge
	log    logger.LoggerInterface
}

// NewClient creates a client that talks to the scripting service through the
// fuscript host of the local Resolve installation.
func NewClient(log logger.LoggerInterface) *Client {
	return &Client{
		bridge: scripting.NewHost(GetFuscriptPath(), log),
		log:    log,
	}
}

// NewClientWithBridge creates a client on a caller-supplied bridge.
func NewClientWithBridge(bridge interfaces.Bridge, log logger.LoggerInterface) *Client {
	return &Client{
		bridge: bridge,
		log:    log,
	}
}

// MediaStorage returns the media storage accessor.
func (c *Client) MediaStorage() *MediaStorage {
	return &MediaStorage{c: c}
}

// ProjectManager returns the project manager accessor.
func (c *Client) ProjectManager() *ProjectManager {
	return &ProjectManager{c: c}
}

// GetProductName returns the vendor product name.
func (c *Client) GetProductName(ctx context.Context) (string, error) {
	result, err := c.invoke(ctx, nil, "GetProductName")
	if err != nil {
		return "", err
	}

	return result.Str(), nil
}

// GetVersionString returns the vendor version string.
func (c *Client) GetVersionString(ctx context.Context) (string, error) {
	result, err := c.invoke(ctx, nil, "GetVersionString")
	if err != nil {
		return "", err
	}

	return result.Str(), nil
}

// GetCurrentPage returns the page currently displayed, e.g. "edit" or "color".
func (c *Client) GetCurrentPage(ctx context.Context) (string, error) {
	result, err := c.invoke(ctx, nil, "GetCurrentPage")
	if err != nil {
		return "", err
	}

	return result.Str(), nil
}

// OpenPage switches the UI to the named page.
func (c *Client) OpenPage(ctx context.Context, page string) (bool, error) {
	result, err := c.invoke(ctx, nil, "OpenPage", page)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// Quit asks Resolve to exit gracefully.
func (c *Client) Quit(ctx context.Context) error {
	_, err := c.invoke(ctx, nil, "Quit")
	return err
}

// Ping probes whether the scripting service answers, using the cheapest call
// the vendor offers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.invoke(ctx, nil, "GetProductName")
	return err
}

func (c *Client) invoke(ctx context.Context, target []string, method string, args ...any) (scripting.Result, error) {
	return c.bridge.Invoke(ctx, scripting.Call{
		Target: target,
		Method: method,
		Args:   args,
	})
}
