/*
Package canvas turns an exported drawing into the canonical 64x64 intensity grid
that is fed to the difference hash.

The pipeline is: decode the payload, convert to luminance, find the bounding box
of the strokes, crop to it and resize to CanonicalSize x CanonicalSize. Cropping
before resizing removes the position and scale of the drawing on the canvas.
*/
package canvas
