// Package memengine provides pure-Go node values and matrices that satisfy
// the smile.NodeValue and smile.Matrix contracts. It stands in for the
// native engine in tests, fixtures and builds without SMILE.
package memengine
