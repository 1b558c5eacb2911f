package scte35

import "github.com/asticode/go-astikit"

// We use a global logger because it feels weird to inject a logger into
// pure decode/encode functions. It is only used to let the developer know
// when an unrecognized descriptor tag or UPID type was preserved as a raw
// value instead of a typed one; the core never fails decode because of it,
// per spec.md §7 ("No error is logged by the core").
var logger = astikit.AdaptStdLogger(nil)

// SetLogger installs l as the destination for the package's diagnostic
// logging. Passing nil restores the default no-op logger.
func SetLogger(l astikit.StdLogger) { logger = astikit.AdaptStdLogger(l) }
