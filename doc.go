/*
Package spashell serves "Single Page Applications" (SPAs) from a read-only
asset store, supporting client-side DOM routing by falling back to the root
document for any path that doesn't look like a file name.

The SPAHandler type implements http.Handler. It fetches the SPA's assets from
any AssetStore: an in-memory MapStore, or an FSStore wrapping an fs.FS such as
an embed.FS with the production build of the SPA, or an os.DirFS during
development.

The root document ("index.html" by default) is prepared only once for the
lifetime of an SPAHandler. If the environment variables ANALYTICS_URL and
ANALYTICS_UUID are both set at that time, a deferred analytics script element
gets injected right before the closing head element of the root document.
*/
package spashell
