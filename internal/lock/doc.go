// Package lock handles parsing and writing of milestones.lock.yaml files.
// Lock files record the status counts of every bar at the time of a pin,
// so later runs can report how far each bar moved since.
package lock
