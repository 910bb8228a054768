// Package common provides shared interfaces used throughout the repoship application.
//
// It holds application-wide contracts that other packages depend on without
// creating import cycles between them.
//
// # Logger Interface
//
// The Logger interface standardizes how components emit messages. It separates
// internal (debug) logging from user-facing output so that a component never
// needs to know whether a log file is in play or where user messages go.
//
// Components receive a Logger by injection:
//
//	type Publisher struct {
//	    logger common.Logger
//	}
//
//	func (p *Publisher) Configure() {
//	    p.logger.Info("configuring remote")        // debug
//	    p.logger.Success("Remote configured")      // shown to the user
//	}
//
// This package must not depend on any other internal package.
package common
