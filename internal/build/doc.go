// Package build defines the shared vocabulary of a single build invocation:
// the target kind, the compile-time flag names, the fatal error taxonomy, and
// the Context value that carries all state accumulated by the pipeline
// stages. The Context is created by the app for one build and is never shared
// between invocations.
package build
