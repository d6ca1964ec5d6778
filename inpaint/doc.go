// Package inpaint - removes a rectangular region from an RGBA pixel buffer
// and synthesizes replacement texture from the surrounding pixels, so the
// region can no longer be distinguished as an overlay.
//
// The pipeline is a single-owner, in-place transformation over one buffer.
// Each stage reads what the previous stage produced, with explicit snapshots
// where a stage must tell "before" from "being written".
//
// Pipeline Overview:
//
// ┌───────────────────────────────────────────┐
// │ Selection Resolver (clamp / auto-detect)  │
// └──────┬────────────────────────────────────┘
// ┌───────────────────────────────────────────┐
// │ Texture Bank (margin-ring color samples)  │
// └──────┬────────────────────────────────────┘
// ┌───────────────────────────────────────────┐
// │ Distance Field (distance to nearest edge) │
// └──────┬────────────────────────────────────┘
// ┌───────────────────────────────────────────┐
// │ Progressive Fill (inward erosion layers)  │
// └──────┬────────────────────────────────────┘
// ┌───────────────────────────────────────────┐
// │ Smoothing (snapshot box-blur passes)      │
// └──────┬────────────────────────────────────┘
// ┌───────────────────────────────────────────┐
// │ Edge Feathering (seam blend to exterior)  │
// └──────┬────────────────────────────────────┘
// ┌───────────────────────────────────────────┐
// │ Grain (uniform noise, cosmetic)           │
// └───────────────────────────────────────────┘
//
// Usage:
//
//	img, _, err := images.DecodeFile("photo.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sel := inpaint.AutoDetect(img.Rect.Dx(), img.Rect.Dy())
//	status, err := inpaint.Inpaint(context.Background(), img, sel,
//	    inpaint.DefaultOptions(), nil)
//
// The call owns the buffer for its duration: nothing else may read or write
// it until Inpaint returns. Yield points inside the heavy stages keep the
// goroutine cooperative and are where cancellation is observed; they are not
// concurrency points.
package inpaint
