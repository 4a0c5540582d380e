// Package fetch provides l10n.Fetcher implementations.
//
// Resource ids may contain a "{locale}" placeholder that is replaced with the
// language code before the resource is read:
//
//	app := fetch.NewFS(os.DirFS("locales"))            // locales/fr/app.properties
//	packs, err := fetch.NewS3(ctx, fetch.S3Config{Bucket: "langpacks", Region: "eu-west-1"})
//	if err != nil {
//		return err
//	}
//
//	fetcher := fetch.NewRouter(app).
//		Handle(l10n.SourceExtra, fetch.NewCached(packs, redis.NewStorage(client)))
//
// Every missing resource is reported with an error wrapping l10n.ErrNotFound.
package fetch
