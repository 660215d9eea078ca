// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit events on a dedicated channel so they
// can be shipped separately from application logs.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnFailure(subject, reason string)
	AuthzFailure(subject, operation string)
	AdmissionGranted(subject, circle string)
	AdmissionDenied(subject, circle, reason string)
}
