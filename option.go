/*
 * Copyright 2026 The Tabulab Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package formula

import (
	"io"
	"time"

	"github.com/tabulab/formula/logger"
)

// Option adjusts an Engine at construction time.
type Option func(*Engine)

// WithLogger routes engine diagnostics to a custom logger. The engine
// holds its own logger rather than touching any process-wide state, so
// two engines can log to different places.
//
//	log := logger.New(logger.DEBUG, os.Stderr)
//	eng := formula.New(formula.WithLogger(log), formula.WithDebug())
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithLogOutput is a convenience for WithLogger with the default
// logger implementation at the given level.
func WithLogOutput(level logger.Level, output io.Writer) Option {
	return func(e *Engine) {
		e.log = logger.New(level, output)
	}
}

// WithDebug turns on debug tracing of downgraded failures. Evaluation
// is total, so without this a formula that quietly yields null gives
// no hint of why; with it every downgrade is logged at debug level.
func WithDebug() Option {
	return func(e *Engine) {
		e.debug = true
	}
}

// WithClock injects the time source behind TODAY and NOW. Tests and
// reproducible pipelines pin it; everything else keeps the wall clock.
//
//	eng := formula.New(formula.WithClock(func() time.Time { return fixed }))
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}
