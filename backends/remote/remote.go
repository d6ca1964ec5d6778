// Package remote - HTTP inpainting backend.
//
// The service contract mirrors the local engine: the client posts the PNG
// image plus the target rectangle and receives the processed PNG back. The
// request shape is a collaborator convenience, not a stable wire protocol.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/pixelmend/go-inpaint/images"
)

// DefaultTimeout bounds a whole round trip when the caller's context has no
// earlier deadline.
const DefaultTimeout = 30 * time.Second

// Client is an inpainting backend backed by a remote HTTP service.
type Client struct {
	// Endpoint is the full URL the image is posted to.
	Endpoint string
	// HTTPClient is the client used for requests. Nil means a client with
	// DefaultTimeout.
	HTTPClient *http.Client
}

// New returns a Client for the given endpoint.
func New(endpoint string) *Client {
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Inpaint implements backends.Inpainter by delegating to the remote
// service. The response image replaces img's pixels in place so the call
// has the same ownership semantics as the local engine.
func (c *Client) Inpaint(ctx context.Context, img *image.RGBA, region image.Rectangle) error {
	region = region.Canon().Intersect(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
	if region.Empty() {
		return nil
	}

	var body bytes.Buffer
	if err := png.Encode(&body, img); err != nil {
		return errors.Wrap(err, "remote: encoding request image")
	}

	url := fmt.Sprintf("%s?x=%d&y=%d&width=%d&height=%d",
		c.Endpoint, region.Min.X, region.Min.Y, region.Dx(), region.Dy())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return errors.Wrap(err, "remote: building request")
	}
	req.Header.Set("Content-Type", "image/png")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "remote: posting image")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("remote: service returned %s: %s", resp.Status, bytes.TrimSpace(msg))
	}

	out, err := png.Decode(resp.Body)
	if err != nil {
		return errors.Wrap(err, "remote: decoding response image")
	}
	rgba := images.ToRGBA(out)
	if rgba.Rect.Dx() != img.Rect.Dx() || rgba.Rect.Dy() != img.Rect.Dy() {
		return errors.Errorf("remote: response dimensions %dx%d do not match input %dx%d",
			rgba.Rect.Dx(), rgba.Rect.Dy(), img.Rect.Dx(), img.Rect.Dy())
	}

	if img.Rect.Min == (image.Point{}) && img.Stride == rgba.Stride {
		copy(img.Pix, rgba.Pix)
		return nil
	}
	for y := 0; y < img.Rect.Dy(); y++ {
		dst := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		src := rgba.PixOffset(0, y)
		copy(img.Pix[dst:dst+img.Rect.Dx()*4], rgba.Pix[src:src+img.Rect.Dx()*4])
	}
	return nil
}
