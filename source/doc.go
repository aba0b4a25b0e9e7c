/*
Package source defines where grimoire data files come from.

The Source interface is the boundary with whatever fetches and caches the
static JSON data. Implementations:
  - FS: reads files from an fs.FS (a directory or an embedded tree)
  - mock: in-memory source for testing
  - ddb: decodes DynamoDB items into token variants
*/
package source
