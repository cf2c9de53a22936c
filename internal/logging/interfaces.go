// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit-grade security events on a dedicated
// logger so they can be shipped separately from application logs.
type SecurityLoggerInterface interface {
	AuthnSuccess(principalID string)
	AuthnFailure(subject, reason string)
	AuthzFailure(principalID, action string)
	SystemStartup()
	SystemShutdown()
}
