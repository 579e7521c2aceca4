// Package factory defines the contract every loadable module satisfies: a
// single AttemptCreate operation that either builds an object for a
// class/interface pair or reports, by returning nil, that it cannot.
//
// A nil result is the only failure signal. An unknown class, an unsupported
// interface and a module that failed to load all look the same to callers.
package factory
