// Command ext2shell is a thin REPL driver over the ext2 explorer core. It
// owns nothing the core doesn't already expose: three entry points (list,
// get-inode, resolve-path) and the block-pointer walker. Any equivalent
// front end — a test harness, an RPC server, a library caller — could
// substitute for it without touching filesystem/ext2.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/go-ext2/ext2fs/backend/file"
	"github.com/go-ext2/ext2fs/filesystem/ext2"
	"github.com/go-ext2/ext2fs/util"
)

func main() {
	imagePath := flag.String("image", "", "path to an ext2 filesystem image")
	logLevel := flag.String("loglevel", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("must pass -image")
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("invalid -loglevel %q: %v", *logLevel, err)
	}
	logger := logrus.New()
	logger.SetLevel(level)

	if err := run(*imagePath, logger); err != nil {
		log.Fatal(err)
	}
}

func run(imagePath string, logger *logrus.Logger) error {
	backend, err := file.OpenFromPath(imagePath)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", imagePath, err)
	}
	defer backend.Close()

	image, err := ext2.Mount(backend, 0)
	if err != nil {
		return fmt.Errorf("could not mount %s: %w", imagePath, err)
	}
	logger.WithFields(logrus.Fields{
		"block_size":    image.BlockSize(),
		"inodes_count":  image.InodesCount(),
		"blocks_count":  image.BlocksCount(),
		"filesystem_id": image.FilesystemID(),
	}).Debug("mounted image")

	sh := &shell{image: image, cwd: ext2.RootInode, logger: logger, out: os.Stdout}
	return sh.loop(os.Stdin)
}

// shell holds the REPL's mutable session state: the current working
// directory's inode number. Everything else is stateless core calls.
type shell struct {
	image  *ext2.Image
	cwd    uint32
	logger *logrus.Logger
	out    *os.File
}

func (sh *shell) loop(in *os.File) error {
	scanner := bufio.NewScanner(in)
	for {
		dirs, err := sh.image.ReadDir(sh.cwd)
		if err != nil {
			fmt.Fprintln(sh.out, "unable to read cwd")
			return nil
		}

		fmt.Fprint(sh.out, ":> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out, "bye!")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		sh.logger.WithFields(logrus.Fields{"command": cmd, "args": args}).Debug("dispatch")

		switch {
		case cmd == "ls":
			sh.cmdLs(args, dirs)
		case cmd == "cd":
			sh.cmdCd(args, dirs)
		case cmd == "cat":
			sh.cmdCat(args, dirs)
		case cmd == "stat":
			sh.cmdStat(args, dirs)
		case cmd == "hexdump":
			sh.cmdHexdump(args, dirs)
		case cmd == "mkdir", cmd == "rm", cmd == "mount", cmd == "link":
			fmt.Fprintf(sh.out, "%s not yet implemented\n", cmd)
		case cmd == "quit" || cmd == "exit":
			return nil
		default:
			fmt.Fprintf(sh.out, "unknown command %q\n", cmd)
		}
	}
}

func (sh *shell) cmdLs(args []string, dirs []ext2.DirEntry) {
	target := dirs
	if len(args) > 0 {
		inodeNumber, err := sh.image.FollowPath(args[0], dirs)
		if err != nil {
			fmt.Fprintln(sh.out, "unable to read dir_listing")
			return
		}
		listing, err := sh.image.ReadDir(inodeNumber)
		if err != nil {
			fmt.Fprintln(sh.out, "unable to read cwd")
			return
		}
		target = listing
	}
	names := make([]string, 0, len(target))
	for _, d := range target {
		names = append(names, d.Name)
	}
	fmt.Fprintln(sh.out, strings.Join(names, "\t"))
}

func (sh *shell) cmdCd(args []string, dirs []ext2.DirEntry) {
	if len(args) == 0 {
		sh.cwd = ext2.RootInode
		return
	}
	target := args[0]
	for _, d := range dirs {
		if d.Name != target {
			continue
		}
		candidate, err := sh.image.GetInode(d.Inode)
		if err != nil {
			fmt.Fprintln(sh.out, "unable to locate", target, "cwd unchanged")
			return
		}
		if !candidate.IsDirectory() {
			fmt.Fprintln(sh.out, "cannot cd into a file")
			return
		}
		sh.cwd = d.Inode
		return
	}
	fmt.Fprintf(sh.out, "unable to locate %s, cwd unchanged\n", target)
}

func (sh *shell) findEntry(name string, dirs []ext2.DirEntry) (uint32, bool) {
	for _, d := range dirs {
		if d.Name == name {
			return d.Inode, true
		}
	}
	return 0, false
}

func (sh *shell) cmdCat(args []string, dirs []ext2.DirEntry) {
	if len(args) == 0 {
		fmt.Fprintln(sh.out, "no argument provided")
		return
	}
	inodeNumber, ok := sh.findEntry(args[0], dirs)
	if !ok {
		fmt.Fprintln(sh.out, "unable to locate", args[0])
		return
	}
	in, err := sh.image.GetInode(inodeNumber)
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}

	var rendered strings.Builder
	err = sh.image.ReadFile(in, func(data []byte) error {
		if data == nil {
			rendered.WriteString("...")
			return nil
		}
		if !utf8.Valid(data) {
			return ext2.ErrInvalidUTF8
		}
		rendered.Write(data)
		return nil
	})
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintln(sh.out, rendered.String())
}

func (sh *shell) cmdStat(args []string, dirs []ext2.DirEntry) {
	if len(args) == 0 {
		fmt.Fprintln(sh.out, "no argument provided")
		return
	}
	inodeNumber, ok := sh.findEntry(args[0], dirs)
	if !ok {
		fmt.Fprintln(sh.out, "unable to locate", args[0])
		return
	}
	in, err := sh.image.GetInode(inodeNumber)
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintf(sh.out, "inode=%d size=%d directory=%v regular=%v\n",
		inodeNumber, in.Size(), in.IsDirectory(), in.TypePerm().IsRegularFile())
}

func (sh *shell) cmdHexdump(args []string, dirs []ext2.DirEntry) {
	if len(args) == 0 {
		fmt.Fprintln(sh.out, "no argument provided")
		return
	}
	inodeNumber, ok := sh.findEntry(args[0], dirs)
	if !ok {
		fmt.Fprintln(sh.out, "unable to locate", args[0])
		return
	}
	in, err := sh.image.GetInode(inodeNumber)
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}

	var content []byte
	err = sh.image.ReadFile(in, func(data []byte) error {
		if data == nil {
			content = append(content, make([]byte, sh.image.BlockSize())...)
			return nil
		}
		content = append(content, data...)
		return nil
	})
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintln(sh.out, util.DumpByteSlice(content, 16))
}
