// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classify

// defaultAliases maps a raw media subtype to the short label used for
// directory names. Subtypes missing here fall through to Normalize.
var defaultAliases = map[string]Label{
	"vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"vnd.oasis.opendocument.text":                                   "odt",
	"vnd.oasis.opendocument.spreadsheet":                            "ods",
	"vnd.oasis.opendocument.presentation":                           "odp",
	"msword":                                                        "doc",
	"vnd.ms-excel":                                                  "xls",
	"vnd.ms-powerpoint":                                             "ppt",
	"x-python":                                                      "py",
	"x-python3":                                                     "py",
	"x-python-code":                                                 "py",
	"x-script.python":                                               "py",
	"x-zip-compressed":                                              "zip",
	"x-7z-compressed":                                               "7z",
	"vnd.rar":                                                       "rar",
	"x-rar-compressed":                                              "rar",
	"x-tar":                                                         "tar",
	"gzip":                                                          "gz",
	"x-gzip":                                                        "gz",
	"plain":                                                         "txt",
	"markdown":                                                      "md",
	"x-markdown":                                                    "md",
	"comma-separated-values":                                        "csv",
	"javascript":                                                    "js",
	"x-sh":                                                          "sh",
	"jpeg":                                                          "jpg",
	"svg+xml":                                                       "svg",
	"mpeg":                                                          "mp3",
	"quicktime":                                                     "mov",
	"x-msvideo":                                                     "avi",
}

// builtinTypes backs the platform registry so that common document and
// source extensions resolve the same way on every host.
var builtinTypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".odt":  "application/vnd.oasis.opendocument.text",
	".py":   "text/x-python",
	".sh":   "application/x-sh",
	".zip":  "application/zip",
	".7z":   "application/x-7z-compressed",
	".rar":  "application/vnd.rar",
	".tar":  "application/x-tar",
	".gz":   "application/gzip",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".json": "application/json",
	".xml":  "application/xml",
	".html": "text/html",
	".htm":  "text/html",
}
