/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

// Debug logs to the DEBUG level using the DefaultLogger.
func Debug(v ...any) {
	DefaultLogger.Debug(v...)
}

// Debugf logs to the DEBUG level using the DefaultLogger.
func Debugf(format string, v ...any) {
	DefaultLogger.Debugf(format, v...)
}

// Info logs to the INFO level using the DefaultLogger.
func Info(v ...any) {
	DefaultLogger.Info(v...)
}

// Infof logs to the INFO level using the DefaultLogger.
func Infof(format string, v ...any) {
	DefaultLogger.Infof(format, v...)
}

// Warning logs to the WARNING level using the DefaultLogger.
func Warning(v ...any) {
	DefaultLogger.Warn(v...)
}

// Warningf logs to the WARNING level using the DefaultLogger.
func Warningf(format string, v ...any) {
	DefaultLogger.Warnf(format, v...)
}

// Error logs to the ERROR level using the DefaultLogger.
func Error(v ...any) {
	DefaultLogger.Error(v...)
}

// Errorf logs to the ERROR level using the DefaultLogger.
func Errorf(format string, v ...any) {
	DefaultLogger.Errorf(format, v...)
}

// Fatal logs to the FATAL level followed by a call to os.Exit(1).
func Fatal(v ...any) {
	DefaultLogger.Fatal(v...)
}

// Fatalf logs to the FATAL level followed by a call to os.Exit(1).
func Fatalf(format string, v ...any) {
	DefaultLogger.Fatalf(format, v...)
}
