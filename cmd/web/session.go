package main

const (
	tableIDSessionKey           = "tableID"
	briefingDismissedSessionKey = "briefingDismissed"
	noticeSessionKey            = "notice"
)
