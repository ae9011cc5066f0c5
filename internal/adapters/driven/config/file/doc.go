// Package file keeps kith settings in ~/.kith/config.toml and watches the
// file so edits made while reminders run are applied without a restart.
package file
