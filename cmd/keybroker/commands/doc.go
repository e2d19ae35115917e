// Package commands defines the keybroker CLI.
//
// Commands
//
//   - migrate     Create the prekey tables and indexes
//   - keygen      Generate an identity, a signed prekey and one-time prekeys
//   - publish     Publish the public half of a keygen file for a user
//   - bundle      Fetch a key bundle, consuming a one-time prekey
//   - consume     Consume a single one-time prekey
//   - mark-used   Mark a one-time prekey as used by id
//   - status      Print key counts for a user
//   - cleanup     Delete expired signed prekeys
//
// Every command except keygen opens the database named in the config file
// before it runs and closes it afterwards.
package commands
