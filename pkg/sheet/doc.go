// Package sheet assembles the payment sheet view-model from the hosting
// application, its saved UI state and the launch arguments. Construction is
// a plain function call; there is no injection container.
package sheet
