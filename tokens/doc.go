// Package tokens defines the concrete token variants placed on a grimoire:
// characters and their reminders. Both embed *token.Token and register
// themselves with the registry package on import.
package tokens
