package readme

import (
	"context"
	"go/doc"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

// PackageDoc loads the Go package matched by pattern, relative to the project
// root, and appends its package comment rendered as Markdown. Headings inside
// the comment are rendered one level below headingLevel.
func (g *Generator) PackageDoc(ctx context.Context, pattern string, headingLevel int) error {
	pkg, err := loadPackage(ctx, g.root, pattern)
	if err != nil {
		return err
	}
	docPkg, err := doc.NewFromFiles(pkg.Fset, pkg.Syntax, pkg.PkgPath)
	if err != nil {
		return errors.Wrapf(err, "reading docs for %s", pkg.PkgPath)
	}
	md := packageMarkdown(docPkg, headingLevel)
	if md == "" {
		g.log.Info("package has no doc comment", "package", pkg.PkgPath)
		return nil
	}
	g.lines = append(g.lines, md, "")
	return nil
}

func packageMarkdown(pkg *doc.Package, headingLevel int) string {
	if strings.TrimSpace(pkg.Doc) == "" {
		return ""
	}
	printer := pkg.Printer()
	if headingLevel < 1 {
		headingLevel = 1
	}
	printer.HeadingLevel = headingLevel + 1
	return strings.TrimSpace(string(printer.Markdown(pkg.Parser().Parse(pkg.Doc))))
}

func loadPackage(ctx context.Context, dir, pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", pattern)
	}
	if len(pkgs) == 0 {
		return nil, errors.Errorf("no Go packages matched %q", pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, errors.New(pkg.Errors[0].Error())
	}
	return pkg, nil
}
