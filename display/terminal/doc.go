// Package terminal implements core.RenderSink for text terminals: each
// viewer gets a virtual container whose cells can be drawn as a styled grid
// with lipgloss.
//
// The sink only stores state on Open / RenderCell; hosts call View whenever
// they want the current frame (for example from a bubbletea View method).
// Lightweight formatting tags such as <red> or <bold> in titles and labels
// are interpreted by Stylize at draw time.
package terminal
