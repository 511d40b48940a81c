package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"dixis/shipzone/pkg/errorutil"
)

// WriteFile 将 records 写入 path，必要时创建目录
// 先写同目录临时文件，全部写完后再 rename，path 要么是旧文件要么是完整的新文件
func WriteFile(path string, records [][]string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errorutil.IO(fmt.Sprintf("create output directory %s failed", dir), err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errorutil.IO(fmt.Sprintf("create temporary file in %s failed", dir), err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(records); err != nil {
		return errorutil.IO(fmt.Sprintf("write %s failed", path), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return errorutil.IO(fmt.Sprintf("chmod %s failed", tmp.Name()), err)
	}
	if err := tmp.Close(); err != nil {
		return errorutil.IO(fmt.Sprintf("close %s failed", tmp.Name()), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errorutil.IO(fmt.Sprintf("rename to %s failed", path), err)
	}

	return nil
}
