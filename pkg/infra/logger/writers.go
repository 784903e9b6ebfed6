package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const flushInterval = 2 * time.Second

// AsyncFileWriter buffers log lines on a channel and flushes them to disk from
// a single goroutine. Lines are dropped when the channel is full.
type AsyncFileWriter struct {
	writer  *bufio.Writer
	file    *os.File
	logChan chan []byte
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

func NewAsyncFileWriter(logFile string, bufferSize int) (*AsyncFileWriter, error) {
	file, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	aw := &AsyncFileWriter{
		writer:  bufio.NewWriterSize(file, bufferSize),
		file:    file,
		logChan: make(chan []byte, 1000),
		done:    make(chan struct{}),
	}
	aw.wg.Add(1)
	go aw.processLogs()

	return aw, nil
}

func (aw *AsyncFileWriter) Write(p []byte) (int, error) {
	select {
	case aw.logChan <- append([]byte{}, p...):
	default:
	}
	return len(p), nil
}

func (aw *AsyncFileWriter) processLogs() {
	defer aw.wg.Done()
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for {
		select {
		case data := <-aw.logChan:
			if _, err := aw.writer.Write(data); err != nil {
				fmt.Fprintln(os.Stderr, "error writing log data to file", err)
			}
		case <-ticker.C:
			_ = aw.writer.Flush()
		case <-aw.done:
			for len(aw.logChan) > 0 {
				_, _ = aw.writer.Write(<-aw.logChan)
			}
			_ = aw.writer.Flush()
			return
		}
	}
}

// Close drains pending lines and closes the file. Safe to call twice.
func (aw *AsyncFileWriter) Close() error {
	var err error
	aw.once.Do(func() {
		close(aw.done)
		aw.wg.Wait()
		err = aw.file.Close()
	})
	return err
}

// ConsoleHook mirrors every entry to out using the logger's formatter.
type ConsoleHook struct {
	out io.Writer
}

func NewConsoleHook(out io.Writer) *ConsoleHook {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleHook{out: out}
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
