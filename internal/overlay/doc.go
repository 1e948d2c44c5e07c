// Package overlay draws extraction geometry onto a screenshot.
//
// Each column band is drawn as a set of vertical lines, one per scan
// position, and each text fragment as the outline of its polygon. The result
// shows at a glance which fragments a band crosses, which is how band
// positions are tuned for a new screen layout.
//
// When no screenshot is available (a document loaded from a saved Vision
// response) the overlay is drawn on a blank canvas sized from the document.
package overlay
