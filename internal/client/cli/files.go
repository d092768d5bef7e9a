package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gophfiles/internal/client/client"
)

// openFile is a test seam for os.Open.
var openFile = func(path string) (file, error) { return os.Open(path) }

type file interface {
	Read(p []byte) (int, error)
	Stat() (os.FileInfo, error)
	Close() error
}

func (a *App) List(ctx context.Context) error {
	if err := a.fileService.Refresh(ctx); err != nil {
		return err
	}
	printlnFn(formatTable(a.fileService.Files()))
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	if err := a.fileService.Search(ctx, query); err != nil {
		return err
	}
	printlnFn(formatTable(a.fileService.Files()))
	return nil
}

func (a *App) Upload(ctx context.Context, path string) error {
	f, err := openFile(path)
	if err != nil {
		printlnFn(fmt.Sprintf("Cannot open %s: %v", path, err))
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		printlnFn(fmt.Sprintf("Cannot read %s: %v", path, err))
		return err
	}
	if info.IsDir() {
		printlnFn(fmt.Sprintf("%s is a directory", path))
		return fmt.Errorf("%s is a directory", path)
	}

	_, err = a.fileService.Upload(ctx, client.UploadRequest{
		Body:        f,
		DisplayName: filepath.Base(path),
		SizeBytes:   info.Size(),
	})
	return err
}

func (a *App) Delete(ctx context.Context, id string) error {
	ok, err := confirm(a.reader, "Are you sure you want to delete this file?", a.out)
	if err != nil || !ok {
		return err
	}
	return a.fileService.Delete(ctx, id)
}

func (a *App) Share(ctx context.Context, id string) error {
	link, err := a.fileService.Share(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(link)
	return nil
}
