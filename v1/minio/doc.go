// Package minio reads card exports from MinIO or any S3-compatible store.
//
// Ingestion accepts either a local path or an "s3://bucket/key" location; the
// latter is opened through [MinioClient.OpenURL]:
//
//	client, err := minio.NewClient(cfg, log)
//	if err != nil {
//	    return err
//	}
//	rc, err := client.OpenURL(ctx, "s3://mtg/all_mtg_cards.csv")
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
//
// Missing objects and buckets are reported as [ErrObjectNotFound].
package minio
