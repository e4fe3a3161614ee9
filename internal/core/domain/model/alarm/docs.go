// Package alarm models temperature alerting: the Alarm raised on a threshold breach and
// the process-wide AlertConfig that holds the threshold, the recipients and the dedup
// flag gating repeat notifications.
package alarm
