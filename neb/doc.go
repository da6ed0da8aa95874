// Package neb implements one round of Nudged-Elastic-Band path refinement:
// fill the previous path to a finer resolution, relax it with a freshly
// constructed optimizer, and return the detached result.
//
// A discretized path is an ordered sequence of images (coordinate vectors)
// with a target distance per consecutive pair. PathModel couples the
// wrapped model's raw gradients to the band: for every interior image the
// gradient component parallel to the path tangent is replaced by a spring
// term pulling the image spacing toward its target distance, while the
// perpendicular component relaxes the image toward the low-energy channel.
// Endpoints are pinned — they are the minima being connected.
//
// Fill strategies grow the path between rounds:
//
//	"equal"   - spread the insertion budget across segments proportionally
//	            to target distance, interpolating linearly.
//	"highest" - spend the whole budget on the segments flanking the
//	            previous round's highest-energy image (falls back to
//	            "equal" when no image energies were recorded).
//
// Round never mutates its inputs and its output shares no storage with the
// optimizer or the model, so a returned cycle can be stored in the
// landscape graph as an immutable record.
//
// Errors:
//
//	ErrUnknownFill     - the configured fill name is not registered.
//	ErrPathTooShort    - fewer than two images.
//	ErrDistanceLength  - target-distance length != image count − 1.
//	ErrDimensionMismatch - images of unequal dimension.
package neb
