// Package limits maps model names to context-window sizes. An embedded
// default table covers common model families; Table instances can merge
// overrides from YAML files and hot-reload them. Lookup falls back to the
// longest registered name prefix, so dated releases resolve to their family
// entry.
package limits
