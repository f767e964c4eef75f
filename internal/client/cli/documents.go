package cli

import (
	"context"
	"fmt"
	"os"
)

// Upload sends a PDF or TXT file to the indexing workflow.
func (a *App) Upload(ctx context.Context, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		var err error
		path, err = getSimpleText(a.reader, "Path to the document (PDF or TXT)", os.Stdout)
		if err != nil {
			return err
		}
	}
	if path == "" {
		printlnFn("Usage: upload <path>")
		return nil
	}

	doc, err := a.documentService.Upload(ctx, *a.ident, path)
	if err != nil {
		printlnFn(errMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("%s (%s, %s) %s", doc.Name, doc.Type, doc.Size, doc.Status))
	return nil
}

// Documents lists the user's uploaded documents.
func (a *App) Documents(ctx context.Context) error {
	docs, err := a.documentService.List(ctx, a.ident.ID)
	if err != nil {
		printlnFn(errMessage(err))
		return err
	}
	if len(docs) == 0 {
		printlnFn("No documents yet. Try: upload <path>")
		return nil
	}
	for _, d := range docs {
		printlnFn(fmt.Sprintf("%s  %s (%s, %s) %s", d.ID, d.Name, d.Type, d.Size, d.Status))
	}
	return nil
}

// RemoveDocument deletes one entry from the document list.
func (a *App) RemoveDocument(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rmdoc <id>")
		return nil
	}

	if err := a.documentService.Remove(ctx, a.ident.ID, args[0]); err != nil {
		printlnFn(errMessage(err))
		return err
	}
	printlnFn("Document removed")
	return nil
}
