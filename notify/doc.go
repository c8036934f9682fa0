// Package notify implements the synchronous "state changed" signal shared by
// the learning engines.
//
// Engines embed a Notifier and call Notify at their publication points
// (landmark boundaries for StreamART2A, every step for UbiSOM, every epoch
// for batch SOM training). Listeners run inline on the learning goroutine, in
// subscription order, and must return quickly.
package notify
