package theme

// DefaultKind is the desktop kind assumed when the platform cannot report one.
const DefaultKind = KindWindows
