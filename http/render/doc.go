/*

Package render holds the collaborators the resp package dispatches template
rendering through: the [Engine] contract, a [Registry] mapping file-extension
tokens to Engines, and a [Cache] of preloaded template tables keyed by an
opaque card.

An Engine is any function turning a template source - or a path pointing at
one - and a data map into a final document. The package bundles two Engines
built on html/template: [HTML] for inline template sources and [HTMLFiles]
for templates addressed by file path within an [fs.FS].

Both the Registry and the Cache are populated while configuring an
application and are read-only once requests are being served.

*/
package render
