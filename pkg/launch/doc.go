// Package launch implements the configure, build, clean and launch sequence used to
// rebuild and start the QuickShot demo.
// External commands are shell command lines interpreted by mvdan.cc/sh so that they
// behave the same on every platform.
package launch
