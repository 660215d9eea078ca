// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("authentication failure",
		zap.String("event", "authn_fail"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, operation string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_fail"),
		zap.String("subject", subject),
		zap.String("operation", operation),
	)
}

func (s *SecurityLogger) AdmissionGranted(subject, circle string) {
	s.l.Info("circle admission granted",
		zap.String("event", "admission_granted"),
		zap.String("subject", subject),
		zap.String("circle", circle),
	)
}

func (s *SecurityLogger) AdmissionDenied(subject, circle, reason string) {
	s.l.Warn("circle admission denied",
		zap.String("event", "admission_denied"),
		zap.String("subject", subject),
		zap.String("circle", circle),
		zap.String("reason", reason),
	)
}
