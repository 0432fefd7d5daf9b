// Package service contains the application services that sit between the
// delivery layer and the stores. Services validate input, delegate
// persistence to store interfaces, and translate store errors into
// service-level ones.
package service
