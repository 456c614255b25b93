// Package voices loads the list of available voice identifiers, either from
// a shared speakers directory or from the AllTalk voice endpoint.
package voices
